package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"go.lepak.sg/ordered/tree/avl"
	"go.lepak.sg/ordered/tree/binary"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var log = logrus.New()

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.WithError(err).Error("avl failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "avl"
	app.Usage = "build, inspect and drain AVL trees of integers"
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log every step",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "insert values in order, then delete some of them",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "delete, d",
					Usage: " delete `VALUE` after all insertions (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "less, l",
					Usage: " report the largest key below `VALUE` (repeatable)",
				},
			},
			Action: runBuild,
		},
		{
			Name:  "random",
			Usage: "build trees from shuffled keys and compare against a plain tree",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "num, n",
					Value:  1000,
					Usage:  " number of keys per tree `COUNT`",
					EnvVar: "AVL_NUM",
				},
				cli.Int64Flag{
					Name:   "seed, s",
					Usage:  " random `SEED` of the first tree (default current unix time in ns)",
					EnvVar: "AVL_SEED",
				},
				cli.IntFlag{
					Name:  "trees, t",
					Value: 1,
					Usage: " number of trees `COUNT`, each with the next seed",
				},
				cli.IntFlag{
					Name:  "parallel, p",
					Value: 4,
					Usage: " build at most `COUNT` trees at once",
				},
				cli.DurationFlag{
					Name:  "balanced-timeout",
					Usage: " also search for a balanced plain tree for at most `DURATION`",
				},
			},
			Action: runRandom,
		},
		{
			Name:      "pop",
			Usage:     "insert values, then remove them one end at a time",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "min",
					Usage: " pop from the smallest end",
				},
				cli.BoolFlag{
					Name:  "max",
					Usage: " pop from the largest end",
				},
			},
			Action: runPop,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.Out = c.App.ErrWriter
		if c.GlobalBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	return app
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", a, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func printTree(w io.Writer, tr *avl.Tree[int]) {
	preorder := make([]int, 0, tr.Len())
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	fmt.Fprintln(w, "preorder:", preorder)
	fmt.Fprintln(w, "inorder:", tr.Values())
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.String())
	fmt.Fprintln(w, "height:", tr.Height(), "size:", tr.Len())
}

func runBuild(c *cli.Context) error {
	keys, err := parseInts(c.Args())
	if err != nil {
		return err
	}
	dels, err := parseInts(c.StringSlice("delete"))
	if err != nil {
		return err
	}
	below, err := parseInts(c.StringSlice("less"))
	if err != nil {
		return err
	}

	tr := avl.New[int]()
	for _, k := range keys {
		if !tr.Insert(k) {
			log.WithField("key", k).Warn("duplicate key ignored")
			continue
		}
		log.WithFields(logrus.Fields{
			"key":    k,
			"height": tr.Height(),
		}).Debug("inserted")
	}

	for _, k := range dels {
		if _, err := tr.Delete(k); err != nil {
			log.WithError(err).WithField("key", k).Warn("delete skipped")
			continue
		}
		log.WithFields(logrus.Fields{
			"key":    k,
			"height": tr.Height(),
		}).Debug("deleted")
	}

	if err := tr.Check(); err != nil {
		return err
	}
	printTree(c.App.Writer, tr)
	for _, k := range below {
		if p, ok := tr.Less(k); ok {
			fmt.Fprintf(c.App.Writer, "less than %d: %d\n", k, p)
		} else {
			fmt.Fprintf(c.App.Writer, "less than %d: none\n", k)
		}
	}
	return nil
}

type randomResult struct {
	seed       int64
	avlHeight  int
	actual     int
	ideal      int
	balancedIn int
}

func runRandom(c *cli.Context) error {
	num := c.Int("num")
	seed := c.Int64("seed")
	trees := c.Int("trees")
	parallel := c.Int("parallel")
	if num < 0 || trees < 1 || parallel < 1 {
		return fmt.Errorf("need --num >= 0, --trees >= 1 and --parallel >= 1")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	timeout := c.Duration("balanced-timeout")

	results := make([]randomResult, trees)

	var g errgroup.Group
	g.SetLimit(parallel)
	for i := 0; i < trees; i++ {
		i := i
		s := seed + int64(i)
		g.Go(func() error {
			tlog := log.WithFields(logrus.Fields{
				"tree": i,
				"seed": s,
			})

			tr := avl.New[int]()
			for _, k := range binary.Shuffled(num, s) {
				tr.Insert(k)
			}
			if err := tr.Check(); err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}

			actual, ideal := binary.BuildRandom(num, s).Height()
			results[i] = randomResult{
				seed:      s,
				avlHeight: tr.Height(),
				actual:    actual,
				ideal:     ideal,
			}

			if timeout > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()
				_, attempts, err := binary.BuildRandomBalanced(ctx, num, s)
				if err != nil {
					tlog.WithError(err).WithField("attempts", attempts).Info("no balanced plain tree found")
				} else {
					results[i].balancedIn = attempts
				}
			}

			tlog.WithFields(logrus.Fields{
				"avl":   tr.Height(),
				"plain": actual,
				"ideal": ideal,
			}).Debug("built")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	heights := make([]int, 0, trees)
	for i, r := range results {
		heights = append(heights, r.avlHeight)
		fields := logrus.Fields{
			"tree":  i,
			"seed":  r.seed,
			"avl":   r.avlHeight,
			"plain": r.actual,
			"ideal": r.ideal,
		}
		if r.balancedIn > 0 {
			fields["attempts"] = r.balancedIn
		}
		log.WithFields(fields).Info("heights")
	}

	slices.Sort(heights)
	fmt.Fprintln(c.App.Writer, "avl heights:", heights)
	return nil
}

func runPop(c *cli.Context) error {
	fromMin, fromMax := c.Bool("min"), c.Bool("max")
	if fromMin == fromMax {
		return fmt.Errorf("give exactly one of --min or --max")
	}

	keys, err := parseInts(c.Args())
	if err != nil {
		return err
	}

	tr := avl.New[int]()
	for _, k := range keys {
		tr.Insert(k)
	}

	pop := tr.DeleteMin
	if fromMax {
		pop = tr.DeleteMax
	}

	order := make([]int, 0, tr.Len())
	for {
		k, err := pop()
		if err != nil {
			if errors.Is(err, avl.ErrEmpty) {
				break
			}
			return err
		}
		order = append(order, k)
		log.WithFields(logrus.Fields{
			"key":    k,
			"left":   tr.Len(),
			"height": tr.Height(),
		}).Debug("popped")
	}

	fmt.Fprintln(c.App.Writer, "order:", order)
	return nil
}
