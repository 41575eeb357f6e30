package jy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/jy/sprite"
)

// Format is an image format sprites can be exported as
type Format int

const (
	PNG Format = iota
	GIF
)

// Ext returns the file extension for the format
func (f Format) Ext() string {
	if f == GIF {
		return ".gif"
	}
	return ".png"
}

func (f Format) encode(w io.Writer, s *sprite.Sprite) error {
	if f == GIF {
		return sprite.EncodeGIF(w, s)
	}
	return sprite.EncodePNG(w, s)
}

// ParseFormat returns the Format with the given name
func ParseFormat(name string) (Format, error) {
	switch name {
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	default:
		return 0, fmt.Errorf("jy: unknown format %q", name)
	}
}

const exportWorkers = 10

func (g *Game) findSprites(ctx context.Context, set SpriteSet) (<-chan int, <-chan error, error) {
	a := g.sprites[set]
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i := 0; i < a.Len(); i++ {
			// Skip empty slots
			if _, ok := a.Record(i); !ok {
				continue
			}

			select {
			case out <- i:
			case <-ctx.Done():
				errc <- errors.New("export cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (g *Game) writeSprite(file string, s *sprite.Sprite, format Format) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := format.encode(f, s); err != nil {
		return err
	}

	return f.Close()
}

func (g *Game) spriteWorker(ctx context.Context, set SpriteSet, dir string, format Format, in <-chan int) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for id := range in {
			s, err := g.Sprite(set, id)
			if err != nil {
				errc <- err
				return
			}

			// Nothing to draw
			if s.Width == 0 || s.Height == 0 {
				g.logger.Printf("Skipping empty %s sprite %d\n", set, id)
				continue
			}

			if err := g.writeSprite(filepath.Join(dir, fmt.Sprintf("%s%05d%s", set, id, format.Ext())), s, format); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Export decodes every sprite in the given archive and writes each one to
// dir in format. The first error stops the export.
func (g *Game) Export(set SpriteSet, dir string, format Format) error {
	if !set.valid() {
		return fmt.Errorf("jy: unknown sprite set %d", set)
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	ids, errc, err := g.findSprites(ctx, set)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < exportWorkers; i++ {
		errc, err := g.spriteWorker(ctx, set, dir, format, ids)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
