package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// tableList is a comma-separated --tables value. It may be repeated; names
// are trimmed and duplicates dropped.
type tableList []string

var _ pflag.Value = (*tableList)(nil)

func (l *tableList) String() string {
	return strings.Join(*l, ",")
}

func (l *tableList) Set(value string) error {
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" || l.contains(name) {
			continue
		}
		*l = append(*l, name)
	}
	return nil
}

func (l *tableList) Type() string {
	return "tables"
}

func (l *tableList) contains(name string) bool {
	for _, n := range *l {
		if n == name {
			return true
		}
	}
	return false
}
