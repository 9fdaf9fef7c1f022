package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/rs/zerolog"
)

// Provisioner is the part of the repository seeding writes through
type Provisioner interface {
	GetApplicationByRootPath(ctx context.Context, rootPath string) (callback.Application, error)
	CreateApplication(ctx context.Context, app callback.Application) (callback.Application, error)
	ResolveReceiver(ctx context.Context, rootPath, callbackPath string) (callback.Receiver, error)
	CreateReceiver(ctx context.Context, r callback.Receiver) (callback.Receiver, error)
	UpdateReceiver(ctx context.Context, r callback.Receiver) error
	ListForwardTargets(ctx context.Context, receiverID int64) ([]callback.ForwardTarget, error)
	CreateForwardTarget(ctx context.Context, t callback.ForwardTarget) (callback.ForwardTarget, error)
	SetForwardTargetEnabled(ctx context.Context, id int64, enabled bool) error
}

// Summary counts what Apply changed
type Summary struct {
	ApplicationsCreated int
	ReceiversCreated    int
	ReceiversUpdated    int
	TargetsCreated      int
	TargetsUpdated      int
}

/* Apply provisions the declarations and can be run any number of times
 * Applications are matched by root path, receivers by path and targets by URL;
 * existing receivers take the declared configuration, nothing is ever deleted
 */
func Apply(ctx context.Context, apps []Application, p Provisioner, logger zerolog.Logger) (Summary, error) {
	var sum Summary
	for _, decl := range apps {
		app, err := p.GetApplicationByRootPath(ctx, decl.RootPath)
		switch {
		case errors.Is(err, callback.ErrNotFound):
			app, err = p.CreateApplication(ctx, callback.Application{Name: decl.Name, RootPath: decl.RootPath})
			if err != nil {
				return sum, fmt.Errorf("creating application %s: %w", decl.Name, err)
			}
			sum.ApplicationsCreated++
			logger.Info().Int64("app_id", app.ID).Str("root_path", app.RootPath).Msg("application seeded")
		case err != nil:
			return sum, fmt.Errorf("getting application %s: %w", decl.RootPath, err)
		}

		for _, rd := range decl.Receivers {
			if err := applyReceiver(ctx, p, app, rd, &sum); err != nil {
				return sum, err
			}
		}
	}
	return sum, nil
}

// Apply provisions everything the loader holds
func (l *Loader) Apply(ctx context.Context, p Provisioner, logger zerolog.Logger) (Summary, error) {
	return Apply(ctx, l.applications, p, logger)
}

func applyReceiver(ctx context.Context, p Provisioner, app callback.Application, decl Receiver, sum *Summary) error {
	r, err := p.ResolveReceiver(ctx, app.RootPath, decl.Path)
	switch {
	case errors.Is(err, callback.ErrReceiverNotFound):
		r, err = p.CreateReceiver(ctx, callback.Receiver{
			AppID:       app.ID,
			Name:        decl.Name,
			Path:        decl.Path,
			AutoForward: decl.AutoForward,
			Response:    decl.Response,
		})
		if err != nil {
			return fmt.Errorf("creating receiver %s: %w", decl.Path, err)
		}
		sum.ReceiversCreated++
	case err == nil:
		r.Name = decl.Name
		r.AutoForward = decl.AutoForward
		r.Response = decl.Response
		if err := p.UpdateReceiver(ctx, r); err != nil {
			return fmt.Errorf("updating receiver %s: %w", decl.Path, err)
		}
		sum.ReceiversUpdated++
	default:
		return fmt.Errorf("resolving receiver %s: %w", decl.Path, err)
	}

	return applyTargets(ctx, p, r.ID, decl.Targets, sum)
}

func applyTargets(ctx context.Context, p Provisioner, receiverID int64, decls []Target, sum *Summary) error {
	if len(decls) == 0 {
		return nil
	}
	existing, err := p.ListForwardTargets(ctx, receiverID)
	if err != nil {
		return fmt.Errorf("listing forward targets: %w", err)
	}
	byURL := make(map[string]callback.ForwardTarget, len(existing))
	for _, t := range existing {
		byURL[t.URL] = t
	}

	for _, decl := range decls {
		t, ok := byURL[decl.URL]
		if !ok {
			created, err := p.CreateForwardTarget(ctx, callback.ForwardTarget{
				ReceiverID: receiverID,
				Name:       decl.Name,
				URL:        decl.URL,
				Enabled:    decl.Enabled,
			})
			if err != nil {
				return fmt.Errorf("creating forward target %s: %w", decl.Name, err)
			}
			byURL[created.URL] = created
			sum.TargetsCreated++
			continue
		}
		if t.Enabled != decl.Enabled {
			if err := p.SetForwardTargetEnabled(ctx, t.ID, decl.Enabled); err != nil {
				return fmt.Errorf("updating forward target %s: %w", decl.Name, err)
			}
			sum.TargetsUpdated++
		}
	}
	return nil
}
