// Package locate finds the directories an installation keeps its files
// in, either from a locations file or from the layout of a source root.
//
// A locations file is INI-formatted, with every option in a [locations]
// section:
//
//	[locations]
//	bin_dir = /usr/bin
//	support_binaries_dir = /usr/lib/strmap/support-binaries
//	helper_scripts_dir = /usr/share/strmap/helper-scripts
//	resources_dir = /usr/share/strmap
//	doc_dir = /usr/share/doc/strmap
//	ruby_libdir = /usr/lib/ruby/vendor_ruby
//	node_libdir = /usr/share/strmap/node
//	build_system_dir = /usr/share/strmap/build
//
// build_system_dir is optional; all other options are required.
package locate

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jrhy/strmap"
)

const (
	// Section is the locations file section the options are read from.
	Section = "locations"

	// DefaultVersion names the per-user support binaries subdirectory.
	DefaultVersion = "1.0.0"

	// DefaultUserNamespaceDir is the directory under a user's home that
	// holds per-user files.
	DefaultUserNamespaceDir = ".strmap"
)

const (
	optBinDir             = "bin_dir"
	optSupportBinariesDir = "support_binaries_dir"
	optHelperScriptsDir   = "helper_scripts_dir"
	optResourcesDir       = "resources_dir"
	optDocDir             = "doc_dir"
	optRubyLibDir         = "ruby_libdir"
	optNodeLibDir         = "node_libdir"
	optBuildSystemDir     = "build_system_dir"
)

// Locator holds the resolved directories of one installation.
type Locator struct {
	installSpec        string
	binDir             string
	supportBinariesDir string
	helperScriptsDir   string
	resourcesDir       string
	docDir             string
	rubyLibDir         string
	nodeLibDir         string
	buildSystemDir     string

	version          string
	userNamespaceDir string
	homeCache        *HomeCache
	lookupHome       func(uid string) (string, error)
	log              *slog.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithVersion sets the version used for the per-user support binaries
// directory.
func WithVersion(version string) Option {
	return func(l *Locator) { l.version = version }
}

// WithUserNamespaceDir sets the directory under the user's home that
// holds per-user files.
func WithUserNamespaceDir(dir string) Option {
	return func(l *Locator) { l.userNamespaceDir = dir }
}

// WithHomeCache makes the Locator remember user database lookups in c.
func WithHomeCache(c *HomeCache) Option {
	return func(l *Locator) { l.homeCache = c }
}

// WithLogger sets the logger for lookup decisions.
func WithLogger(log *slog.Logger) Option {
	return func(l *Locator) { l.log = log }
}

// New resolves the directories for installSpec. If installSpec is a
// regular file it is read as a locations file; otherwise it is taken to
// be the root of a source tree and the directories are derived from the
// standard layout under it.
func New(installSpec string, opts ...Option) (*Locator, error) {
	l := &Locator{
		installSpec:      installSpec,
		version:          DefaultVersion,
		userNamespaceDir: DefaultUserNamespaceDir,
		lookupHome:       lookupHome,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = slog.With(slog.String("component", "locator"))
	}

	if fi, err := os.Stat(installSpec); err == nil && fi.Mode().IsRegular() {
		if err := l.loadFile(installSpec); err != nil {
			return nil, err
		}
		l.log.Debug("Loaded locations file", slog.String("file", installSpec))
		return l, nil
	}

	root := installSpec
	l.binDir = filepath.Join(root, "bin")
	l.supportBinariesDir = filepath.Join(root, "buildout", "support-binaries")
	l.helperScriptsDir = filepath.Join(root, "src", "helper-scripts")
	l.resourcesDir = filepath.Join(root, "resources")
	l.docDir = filepath.Join(root, "doc")
	l.rubyLibDir = filepath.Join(root, "src", "ruby_supportlib")
	l.nodeLibDir = filepath.Join(root, "src", "nodejs_supportlib")
	l.buildSystemDir = root
	l.log.Debug("Using source root layout", slog.String("root", root))
	return l, nil
}

func (l *Locator) loadFile(file string) error {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read locations file '%s'", file)
	}

	required := func(key string) (string, error) {
		k := Section + "." + key
		if !v.IsSet(k) {
			return "", &ConfigError{File: file, Key: key}
		}
		return v.GetString(k), nil
	}

	for _, o := range []struct {
		key string
		dst *string
	}{
		{optBinDir, &l.binDir},
		{optSupportBinariesDir, &l.supportBinariesDir},
		{optHelperScriptsDir, &l.helperScriptsDir},
		{optResourcesDir, &l.resourcesDir},
		{optDocDir, &l.docDir},
		{optRubyLibDir, &l.rubyLibDir},
		{optNodeLibDir, &l.nodeLibDir},
	} {
		val, err := required(o.key)
		if err != nil {
			return err
		}
		*o.dst = val
	}
	l.buildSystemDir = v.GetString(Section + "." + optBuildSystemDir)
	return nil
}

// InstallSpec returns the file or root directory the Locator was
// created from.
func (l *Locator) InstallSpec() string { return l.installSpec }

func (l *Locator) BinDir() string { return l.binDir }

func (l *Locator) SupportBinariesDir() string { return l.supportBinariesDir }

func (l *Locator) HelperScriptsDir() string { return l.helperScriptsDir }

func (l *Locator) ResourcesDir() string { return l.resourcesDir }

func (l *Locator) DocDir() string { return l.docDir }

func (l *Locator) RubyLibDir() string { return l.rubyLibDir }

func (l *Locator) NodeLibDir() string { return l.nodeLibDir }

// BuildSystemDir may be empty.
func (l *Locator) BuildSystemDir() string { return l.buildSystemDir }

// Dirs returns every named directory keyed by its locations file option
// name.
func (l *Locator) Dirs() *strmap.Map[string] {
	dirs := strmap.New[string]()
	dirs.SetString(optBinDir, l.binDir)
	dirs.SetString(optSupportBinariesDir, l.supportBinariesDir)
	dirs.SetString(optHelperScriptsDir, l.helperScriptsDir)
	dirs.SetString(optResourcesDir, l.resourcesDir)
	dirs.SetString(optDocDir, l.docDir)
	dirs.SetString(optRubyLibDir, l.rubyLibDir)
	dirs.SetString(optNodeLibDir, l.nodeLibDir)
	dirs.SetString(optBuildSystemDir, l.buildSystemDir)
	return dirs
}

// UserSupportBinariesDir returns the support binaries directory in the
// effective user's home, e.g. ~/.strmap/support-binaries/1.0.0.
func (l *Locator) UserSupportBinariesDir() (string, error) {
	uid := strconv.Itoa(os.Geteuid())
	home, ok := l.homeCache.get(uid)
	if !ok {
		var err error
		home, err = l.lookupHome(uid)
		if err != nil {
			return "", errors.Wrapf(ErrUserLookup, "uid %s: %v", uid, err)
		}
		l.homeCache.add(uid, home)
	}
	return filepath.Join(home, l.userNamespaceDir, "support-binaries", l.version), nil
}

// FindSupportBinary looks for name in the system support binaries
// directory, then in the per-user one, and returns the first path that
// exists.
func (l *Locator) FindSupportBinary(name string) (string, error) {
	systemPath := filepath.Join(l.supportBinariesDir, name)
	_, err := os.Stat(systemPath)
	if err == nil {
		return systemPath, nil
	}
	l.log.Debug("Support binary not in system directory",
		slog.String("path", systemPath), slog.Any("error", err))

	userDir, err := l.UserSupportBinariesDir()
	if err != nil {
		return "", err
	}
	userPath := filepath.Join(userDir, name)
	if _, err := os.Stat(userPath); err == nil {
		return userPath, nil
	}
	return "", errors.Wrapf(ErrNotFound, "support binary %s (tried: %s and %s)", name, systemPath, userPath)
}
