package main

import (
	"flag"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/xerrors"

	"github.com/Nebu1eto/javarandom/internal/config"
	"github.com/Nebu1eto/javarandom/internal/tiles"
)

// input is the JSON file schema:
//
//	{"scramble_seed": 12345, "page_list": ["https://...", ...]}
type input struct {
	ScrambleSeed int64
	PageList     []string
}

func parseInput(data []byte) (input, error) {
	if !gjson.ValidBytes(data) {
		return input{}, xerrors.New("err: failure to parse JSON (invalid document)")
	}
	seed := gjson.GetBytes(data, "scramble_seed")
	if seed.Type != gjson.Number {
		return input{}, xerrors.New("err: scramble_seed is missing or not a number")
	}
	in := input{ScrambleSeed: seed.Int()}
	for _, page := range gjson.GetBytes(data, "page_list").Array() {
		in.PageList = append(in.PageList, page.String())
	}
	return in, nil
}

func runDescramble(args []string) error {
	fs := flag.NewFlagSet("descramble", flag.ExitOnError)
	var c common
	c.register(fs)
	parallelism := fs.Int("p", 0, "pages processed at once (default 4)")
	outputDir := fs.String("d", "", "output directory (default .)")
	quality := fs.Int("q", 0, "JPEG quality (default 95)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: jrand descramble [options] <json_file_path>")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	conf, log, err := c.load(fs, func(conf *config.Config, set map[string]bool) {
		d := &conf.Descramble
		if set["p"] {
			d.Parallelism = *parallelism
		}
		if set["d"] {
			d.OutputDir = *outputDir
		}
		if set["q"] {
			d.Quality = *quality
		}
	})
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	jsonPath := fs.Arg(0)
	file, err := os.ReadFile(jsonPath)
	if err != nil {
		return xerrors.Errorf("err: failure to read JSON file (%s): %w", jsonPath, err)
	}
	in, err := parseInput(file)
	if err != nil {
		return err
	}

	log.Info().Int64("seed", in.ScrambleSeed).Int("pages", len(in.PageList)).Msg("start descrambler")
	failed := processPages(log, conf.Descramble, in)
	if failed > 0 {
		return xerrors.Errorf("err: %d of %d pages failed", failed, len(in.PageList))
	}
	log.Info().Msg("completed to download and descramble images")
	return nil
}

// processPages handles every page concurrently, at most conf.Parallelism
// at a time, and returns the number of pages that failed.
func processPages(log zerolog.Logger, conf config.Descramble, in input) int {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	sem := make(chan struct{}, conf.Parallelism)

	for i, pageURL := range in.PageList {
		wg.Add(1)
		sem <- struct{}{}
		go func(index int, url string) {
			defer wg.Done()
			defer func() { <-sem }()

			plog := log.With().Int("page", index+1).Logger()
			if err := processPage(plog, conf, in.ScrambleSeed, index, url); err != nil {
				plog.Error().Err(err).Msg("page failed")
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(i, pageURL)
	}

	wg.Wait()
	return failed
}

func processPage(log zerolog.Logger, conf config.Descramble, seed int64, index int, url string) error {
	log.Debug().Str("url", url).Msg("downloading...")
	scrambledImg, err := downloadImage(url)
	if err != nil {
		return err
	}

	log.Debug().Msg("descrambling...")
	descrambledImg, err := tiles.Descramble(scrambledImg, seed)
	if err != nil {
		return xerrors.Errorf("err: failure to descramble: %w", err)
	}

	outputPath := filepath.Join(conf.OutputDir, fmt.Sprintf("out_%03d.jpg", index+1))
	if err := saveImage(descrambledImg, outputPath, conf.Quality); err != nil {
		return err
	}
	log.Info().Str("path", outputPath).Msg("saved image")
	return nil
}

// TODO: support custom headers and mimic browser's fingerprint
func downloadImage(url string) (image.Image, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, xerrors.Errorf("err: failure to download image (%s): %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("err: http status is invalid (%s)", resp.Status)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, xerrors.Errorf("err: failure to decode image (%s): %w", url, err)
	}
	return img, nil
}

func saveImage(img image.Image, path string, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return xerrors.Errorf("err: failure to save image (%s): %w", path, err)
	}
	return nil
}
