package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vectorhx/xtree/lib/infra"
	"github.com/vectorhx/xtree/lib/kv"
	"github.com/vectorhx/xtree/lib/tree"
)

var rootCmd = &cobra.Command{
	Use:   "xtree",
	Short: "ordered container playground",
	Long:  "Benchmarks and audits the red-black tree backed containers against the builtin map.",
	Run: func(cmd *cobra.Command, args []string) {
		logger := lo.Must(zap.NewDevelopment()).Sugar()
		defer func() { _ = logger.Sync() }()

		n := lo.Must(cmd.Flags().GetInt("count"))
		seed := lo.Must(cmd.Flags().GetInt64("seed"))
		if n <= 0 {
			logger.Fatalw("count must be positive", "count", n)
		}
		rng := rand.New(rand.NewSource(seed))
		keys := rng.Perm(n)

		logger.Infow("workload", "count", n, "seed", seed)
		measure(logger, "treemap put", func() {
			m := kv.NewTreeMap[int, int]()
			for _, k := range keys {
				m.Put(k, k)
			}
		})
		measure(logger, "builtin map put", func() {
			m := make(map[int]int, n)
			for _, k := range keys {
				m[k] = k
			}
		})

		m := kv.NewTreeMap[int, int]()
		for _, k := range keys {
			m.Put(k, k)
		}
		measure(logger, "treemap ordered scan", func() {
			prev := -1
			m.Foreach(func(idx int64, key int, val int) bool {
				if key <= prev {
					logger.Fatalw("out of order", "key", key, "prev", prev)
				}
				prev = key
				return true
			})
		})

		t := tree.NewOrdered[uint64]()
		for _, k := range keys {
			if _, ok := t.Insert(uint64(k)); !ok {
				logger.Fatalw("duplicate key", "key", k)
			}
		}
		if err := tree.Audit[uint64](t, infra.OrderedKeyLess[uint64]); err != nil {
			logger.Fatalw("audit failed", "error", err)
		}
		logger.Infow("audit passed", "len", t.Len())
	},
}

func measure(logger *zap.SugaredLogger, name string, fn func()) {
	start := time.Now()
	fn()
	logger.Infow(name, "elapsed", time.Since(start))
}

func init() {
	rootCmd.Flags().IntP("count", "n", 100000, "number of keys to load")
	rootCmd.Flags().Int64P("seed", "s", 42, "seed for the key permutation")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
