// generate-sample-data writes a small synthetic movies.txt / ratings.dat pair
// in the "::" format the analysis reads, for trying the pipeline end to end.
//
// Usage: go run ./scripts/generate-sample-data [-dir .] [-movies 200] [-users 50] [-seed 1]
//
// Roughly one title in twenty has no "(YYYY)" suffix and a few ratings point at
// movie ids that do not exist, so the missing-year and dropped-rating paths are exercised.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genre-ratings/pkg/genres"
)

type options struct {
	movies int
	users  int
	seed   uint64
}

func main() {
	dir := flag.String("dir", ".", "Directory to write movies.txt and ratings.dat into")
	movies := flag.Int("movies", 200, "Number of movies")
	users := flag.Int("users", 50, "Number of users")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	logConfig := zap.NewDevelopmentConfig()
	logger, _ := logConfig.Build()
	defer logger.Sync()

	if *movies <= 0 || *users <= 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-dir .] [-movies N>0] [-users N>0] [-seed N]\n", os.Args[0])
		os.Exit(1)
	}

	opts := options{movies: *movies, users: *users, seed: *seed}
	if err := writeDataset(*dir, opts, logger); err != nil {
		logger.Error("Failed to write sample data", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func writeDataset(dir string, opts options, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))

	moviesPath := filepath.Join(dir, "movies.txt")
	if err := writeFile(moviesPath, func(w io.Writer) error { return writeMovies(w, rng, opts) }); err != nil {
		return err
	}
	ratingsPath := filepath.Join(dir, "ratings.dat")
	n := 0
	if err := writeFile(ratingsPath, func(w io.Writer) (err error) {
		n, err = writeRatings(w, rng, opts)
		return err
	}); err != nil {
		return err
	}

	logger.Info("Sample data written",
		zap.String("movies", moviesPath),
		zap.String("ratings", ratingsPath),
		zap.Int("movie_count", opts.movies),
		zap.Int("rating_count", n))
	return nil
}

func writeFile(path string, fill func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

var titleWords = []string{
	"Lost", "City", "Night", "River", "Shadow", "Last", "Summer", "Iron",
	"Silent", "Empire", "Garden", "Storm", "Paper", "Blue", "Golden", "Road",
}

func writeMovies(w io.Writer, rng *rand.Rand, opts options) error {
	for id := 1; id <= opts.movies; id++ {
		title := titleWords[rng.IntN(len(titleWords))] + " " + titleWords[rng.IntN(len(titleWords))]
		if rng.IntN(20) != 0 {
			title = fmt.Sprintf("%s (%d)", title, 1919+rng.IntN(82))
		}

		picked := make([]string, 0, 3)
		for _, i := range rng.Perm(genres.Count)[:1+rng.IntN(3)] {
			picked = append(picked, string(genres.All[i]))
		}

		if _, err := fmt.Fprintf(w, "%d::%s::%s\n", id, title, strings.Join(picked, "|")); err != nil {
			return err
		}
	}
	return nil
}

func writeRatings(w io.Writer, rng *rand.Rand, opts options) (int, error) {
	n := 0
	ts := int64(956703932)
	for user := 1; user <= opts.users; user++ {
		count := 5 + rng.IntN(20)
		for range count {
			movie := 1 + rng.IntN(opts.movies)
			if rng.IntN(50) == 0 {
				movie = opts.movies + 1 + rng.IntN(10)
			}
			ts += int64(rng.IntN(3600))
			if _, err := fmt.Fprintf(w, "%d::%d::%d::%d\n", user, movie, 1+rng.IntN(5), ts); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}
