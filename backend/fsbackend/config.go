package fsbackend

import (
	"bytes"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// Config section/key names, following git's own config layout
const (
	cfgCore                  = "core"
	cfgCoreFormatVersion     = "repositoryformatversion"
	cfgCoreFileMode          = "filemode"
	cfgCoreBare              = "bare"
	cfgCoreLogAllRefUpdate   = "logallrefupdates"
	cfgCoreIgnoreCase        = "ignorecase"
	cfgCorePrecomposeUnicode = "precomposeunicode"
)

// setDefaultCfg writes the default repository configuration. Parsing
// this file back is out of scope: it's write-only, produced purely so
// the metadir looks like a conventional repository layout.
func (b *Backend) setDefaultCfg() error {
	cfg := ini.Empty()

	core, err := cfg.NewSection(cfgCore)
	if err != nil {
		return xerrors.Errorf("could not create core section: %w", err)
	}
	values := map[string]string{
		cfgCoreFormatVersion:     "0",
		cfgCoreFileMode:          "true",
		cfgCoreBare:              "false",
		cfgCoreLogAllRefUpdate:   "true",
		cfgCoreIgnoreCase:        "true",
		cfgCorePrecomposeUnicode: "true",
	}
	for k, v := range values {
		if _, err := core.NewKey(k, v); err != nil {
			return xerrors.Errorf("could not set %s: %w", k, err)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return xerrors.Errorf("could not render config: %w", err)
	}

	p := b.path(ginternals.ConfigFileName)
	if err := afero.WriteFile(b.fs, p, buf.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("could not write %s: %w", p, err)
	}
	return nil
}
