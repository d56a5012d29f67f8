// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Session command line options

package session

import (
	"github.com/spf13/pflag"
)

const (
	// GroupTitle is the help heading the tempdir flags are listed under
	GroupTitle = "Temporary Directory Options"
	// GroupAnnotation marks flags belonging to GroupTitle
	GroupAnnotation = "tempdir_group"

	FlagBasename = "tempdir-basename"
	FlagNoClean  = "tempdir-no-clean"
)

// Options holds the tempdir settings taken from the command line
type Options struct {
	Basename string // Empty means unset
	NoClean  bool
}

// AddFlags registers the tempdir flags on fs
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Basename, FlagBasename, "",
		"The predictable temporary directory base name. Defaults to the current "+
			"directory name if not passed here and not provided by a basename hook. "+
			"If the temporary directory exists when the test session starts, IT WILL BE WIPED!")
	fs.BoolVar(&o.NoClean, FlagNoClean, false,
		"Disable the removal of the created temporary directory")

	for _, name := range []string{FlagBasename, FlagNoClean} {
		_ = fs.SetAnnotation(name, GroupAnnotation, []string{GroupTitle})
	}
}

// InGroup reports whether f is one of the tempdir flags
func InGroup(f *pflag.Flag) bool {
	_, ok := f.Annotations[GroupAnnotation]
	return ok
}
