package converter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// GroupBy selects how flat operations are arranged into folders.
type GroupBy string

const (
	// GroupByTags creates one folder per first tag; untagged requests stay at
	// the root.
	GroupByTags GroupBy = "tags"
	// GroupByPath nests folders by URL path segment.
	GroupByPath GroupBy = "path"
)

// ParseGroupBy parses a grouping strategy name. The empty string selects the
// default, GroupByTags.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(strings.ToLower(strings.TrimSpace(s))) {
	case "", GroupByTags:
		return GroupByTags, nil
	case GroupByPath:
		return GroupByPath, nil
	}
	return "", fmt.Errorf("unknown grouping %q (use: tags, path)", s)
}

// Option configures a conversion.
type Option func(*options)

type options struct {
	groupBy      GroupBy
	newID        func() string
	logger       *slog.Logger
	nameOverride string
	validate     bool
}

func newOptions(opts []Option) *options {
	o := &options{
		groupBy:  GroupByTags,
		newID:    uuid.NewString,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithGroupBy sets the grouping strategy.
func WithGroupBy(g GroupBy) Option {
	return func(o *options) {
		if g != "" {
			o.groupBy = g
		}
	}
}

// WithIDGenerator replaces the unique id generator. It is called once per
// created entity.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// WithLogger sets the logger receiving diagnostics, including the cause of a
// failed conversion.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCollectionName overrides the name taken from info.title.
func WithCollectionName(name string) Option {
	return func(o *options) {
		o.nameOverride = name
	}
}

// WithValidation toggles schema validation of the produced collection.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}
