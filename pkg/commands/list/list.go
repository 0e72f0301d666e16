// Package list reports the components known to the index and which of
// their versions have been pulled into the local store.
package list

import (
	"github.com/unikit-dev/unikit/pkg/components"
	"github.com/unikit-dev/unikit/pkg/config"
	"github.com/unikit-dev/unikit/pkg/logging"
)

// Options defines the options for the List command.
type Options struct {
	// IndexPath overrides the component index location (settings default).
	IndexPath string
	// Store overrides the store to check (shared store default).
	Store *components.Store
}

// Item is one component row.
type Item struct {
	Name     string
	Type     string
	Versions []string
	// Pulled holds the subset of versions present in the local store.
	Pulled []string
}

// Result holds the component listing.
type Result struct {
	Items []Item
}

// List enumerates indexed components with their pull state.
func List(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.list")

	if opts.IndexPath == "" || opts.Store == nil {
		settings, err := config.Load()
		if err != nil {
			return nil, err
		}
		if opts.IndexPath == "" {
			opts.IndexPath = settings.IndexPath
		}
		if opts.Store == nil {
			opts.Store = components.DefaultStore()
		}
	}

	index, err := components.EnsureIndex(opts.IndexPath)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, entry := range index.Components {
		item := Item{
			Name:     entry.Name,
			Type:     entry.Type,
			Versions: entry.Versions,
		}
		for _, v := range entry.Versions {
			if opts.Store.Has(entry.Name, v) {
				item.Pulled = append(item.Pulled, v)
			}
		}
		result.Items = append(result.Items, item)
	}

	logger.Debug().Int("components", len(result.Items)).Msg("Listed components")
	return result, nil
}
