package cli

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridframe/internal/server"
	"github.com/matzehuels/gridframe/pkg/theme"
)

const shutdownTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	themePath string // theme TOML file (empty = built-in default)
	addr      string // listen address
	watch     bool   // reload the theme when its file changes
}

// serveCommand creates the serve command for running the dev server.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dev server",
		Long:  `Serve the theme's stylesheet and per-region resolution results over HTTP. With --watch, the theme file is reloaded on change so connected tooling always sees the current layout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && opts.themePath == "" {
				return errors.New("--watch requires --theme")
			}
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.themePath, "theme", "t", "", "theme TOML file (default: built-in theme)")
	cmd.Flags().StringVarP(&opts.addr, "addr", "a", defaultAddr, "listen address")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the theme when the file changes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	th, err := c.loadTheme(opts.themePath)
	if err != nil {
		return err
	}

	srv := server.New(th, c.Logger)
	httpSrv := &http.Server{Addr: opts.addr, Handler: srv.Handler()}

	if opts.watch {
		stop, err := c.watchTheme(ctx, opts.themePath, srv)
		if err != nil {
			return err
		}
		defer stop()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	printInfo("Serving on http://%s", opts.addr)
	printNextStep("Stylesheet", "curl http://"+opts.addr+"/stylesheet.css")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	c.Logger.Info("Server stopped")
	return ctx.Err()
}

// watchTheme reloads the server's theme whenever the file changes. The watch
// is on the parent directory because editors typically replace files via
// rename, which drops a watch held on the file itself.
func (c *CLI) watchTheme(ctx context.Context, path string, srv *server.Server) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	logger := loggerFromContext(ctx)
	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				c.reloadTheme(path, srv)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error", "err", err)
			}
		}
	}()

	logger.Debugf("Watching %s", path)
	return watcher.Close, nil
}

// reloadTheme loads the theme file and swaps it into the server. A theme
// that fails to load or validate leaves the previous one serving.
func (c *CLI) reloadTheme(path string, srv *server.Server) {
	th, err := theme.Load(path)
	if err != nil {
		c.Logger.Warn("Theme reload failed, keeping previous", "err", err)
		return
	}
	srv.SetTheme(th)
	c.Logger.Infof("Reloaded theme %s", path)
}
