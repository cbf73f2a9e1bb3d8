package main

import (
	"context"
	"errors"
	"math/rand"
	"os"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/dataset"
	"github.com/delaneyj/dashcells/viewmodel"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const (
	countKey  = "count"
	sortKey   = "sort"
	imposeKey = "impose"
	searchKey = "search"
	seedKey   = "seed"
	debugKey  = "debug"
)

func main() {
	cmd := &cli.Command{
		Name:  "dashboard",
		Usage: "Open sample datasets in reactive tabs and print them sorted",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  countKey,
				Usage: "Number of sample datasets to open",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  sortKey,
				Usage: "Sort mode: unsorted, name, measurement, mean, minimum, maximum",
				Value: dataset.ByName.String(),
			},
			&cli.BoolFlag{
				Name:  imposeKey,
				Usage: "Make the sorted order permanent before printing again",
			},
			&cli.StringFlag{
				Name:  searchKey,
				Usage: "Key to look up among the datasets under the sort mode",
			},
			&cli.UintFlag{
				Name:  seedKey,
				Usage: "Seed for the sample generator",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  debugKey,
				Usage: "Log every reactive trigger",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("dashboard failed")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	mode, err := dataset.ParseSortMode(cmd.String(sortKey))
	if err != nil {
		return err
	}

	var opts []cells.Option
	if cmd.Bool(debugKey) {
		logrus.SetLevel(logrus.DebugLevel)
		opts = append(opts, cells.WithTriggerHook(func(owner cells.OwnerKey, prop string) {
			logrus.WithFields(logrus.Fields{
				"owner": owner.String(),
				"prop":  prop,
			}).Debug("trigger")
		}))
	}
	rt := cells.NewRuntime(opts...)
	catalog := dataset.NewCatalog(rt)
	m := viewmodel.NewMain(rt, catalog)
	defer m.Release()

	m.AnyOpenFiles.OnChange(func(open bool) {
		logrus.WithField("open", open).Info("open files changed")
	})

	random := rand.New(rand.NewSource(int64(cmd.Uint(seedKey))))
	count := int(cmd.Uint(countKey))
	for i := 0; i < count; i++ {
		loc := catalog.AddSample(sampleDataset(random, i))
		ds, _ := catalog.Get(loc)
		tab := m.Open(ds)
		tab.MarkSaved()
	}
	logrus.WithField("count", count).Info("opened sample datasets")

	m.SortMode.Set(mode)
	logrus.WithField("mode", mode).Info("sorted tabs")
	renderTabs(os.Stdout, m)

	if count > 0 {
		// renaming the selected tab moves it under the name sort
		tab := m.Tabs.At(m.Selected.Peek())
		tab.Rename("renamed " + tab.Header.Peek())
		if err := tab.Lowercase.Execute(ctx); err != nil && !errors.Is(err, cells.ErrCannotExecute) {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"header": tab.Header.Peek(),
			"text":   tab.TextField.Peek(),
			"dirty":  tab.Dirty.Peek(),
		}).Info("renamed selected tab")
		renderTabs(os.Stdout, m)
	}

	if cmd.Bool(imposeKey) {
		m.ImposeSort()
		logrus.WithField("mode", m.SortMode.Peek()).Info("imposed sort order")
		renderTabs(os.Stdout, m)
	}

	if needle := cmd.String(searchKey); needle != "" {
		i, err := catalog.SearchDatasets(mode, needle)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"needle": needle,
			"index":  i,
		}).Info("searched datasets")
	}

	stats := rt.Stats()
	logrus.WithFields(logrus.Fields{
		"owners":        humanize.Comma(int64(stats.Owners)),
		"effects":       humanize.Comma(int64(stats.Effects)),
		"subscriptions": humanize.Comma(int64(stats.Subscriptions)),
	}).Info("runtime stats")
	return nil
}
