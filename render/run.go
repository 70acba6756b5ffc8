package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"slidec/config"
	"slidec/state"
)

// Run is the convert subcommand action: resolve paths, load the optional
// extra stylesheet and hand off to Convert.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".pptx"
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		base := filepath.Base(src)
		dst = filepath.Join(dst, config.CleanFileName(strings.TrimSuffix(base, filepath.Ext(base)))+".pptx")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	var extraCSS []byte
	if env.Cfg.Document.StylesheetPath != "" {
		extraCSS, err = os.ReadFile(env.Cfg.Document.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read style css from %q: %w", env.Cfg.Document.StylesheetPath, err)
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open input source: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy("input"+filepath.Ext(src), src); err != nil {
			log.Warn("Unable to store input copy in report", zap.Error(err))
		}
	}

	if err := Convert(ctx, f, filepath.Base(src), dst, &env.Cfg.Document, extraCSS, log); err != nil {
		return err
	}

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(dst), dst)
	}
	return nil
}
