package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"img2pdf/convert"
	"img2pdf/gallery"
	"img2pdf/state"
)

// openSessionStore opens the store configured for the current run.
func openSessionStore(ctx context.Context) (*gallery.Store, error) {
	return gallery.OpenStore(state.EnvFromContext(ctx).Cfg.Sessions.StorePath)
}

// loadSession reads the named session into a fresh list.
func loadSession(ctx context.Context, store *gallery.Store, session string) (*gallery.List, error) {
	list := gallery.NewList(&state.EnvFromContext(ctx).Cfg.Document.Images)
	if err := store.Load(session, list); err != nil {
		return nil, err
	}
	return list, nil
}

func listSessions(ctx context.Context, cmd *cli.Command) error {
	store, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no stored sessions")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}

func listShow(ctx context.Context, cmd *cli.Command) error {
	session := cmd.Args().Get(0)
	if len(session) == 0 {
		return errors.New("no session name has been specified")
	}

	store, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := loadSession(ctx, store, session)
	if err != nil {
		return err
	}
	for i, item := range list.Items() {
		fmt.Fprintf(os.Stdout, "%4d  %-12s %8d  %s\n", i+1, item.MediaType, item.Size(), item.Name)
	}
	return nil
}

func listAdd(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	session := cmd.Args().Get(0)
	if len(session) == 0 {
		return errors.New("no session name has been specified")
	}
	if cmd.Args().Len() < 2 {
		return errors.New("no input source has been specified")
	}

	convert.ForceZipEncoding(cmd.String("force-zip-cp"), env, log)

	store, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	// new session starts empty, existing one gets appended to
	list := gallery.NewList(&env.Cfg.Document.Images)
	if err := store.Load(session, list); err != nil {
		log.Debug("Starting new session", zap.String("session", session))
	}

	before := list.Len()
	if err := convert.Import(ctx, cmd.Args().Slice()[1:], list, log); err != nil {
		return err
	}
	if list.Len() == before {
		return errors.New("no images were found in specified sources")
	}

	if err := store.Save(session, list.Items()); err != nil {
		return err
	}
	log.Info("Session updated", zap.String("session", session), zap.Int("added", list.Len()-before), zap.Int("total", list.Len()))
	return nil
}

func listRemove(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	session := cmd.Args().Get(0)
	if len(session) == 0 {
		return errors.New("no session name has been specified")
	}
	pos, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("malformed image position '%s': %w", cmd.Args().Get(1), err)
	}

	store, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := loadSession(ctx, store, session)
	if err != nil {
		return err
	}
	if pos < 1 || pos > list.Len() {
		return fmt.Errorf("image position %d out of range [1, %d]", pos, list.Len())
	}

	item := list.Items()[pos-1]
	list.Remove(item.ID)

	if err := store.Save(session, list.Items()); err != nil {
		return err
	}
	log.Info("Image removed from session", zap.String("session", session), zap.String("image", item.Name), zap.Int("remaining", list.Len()))
	return nil
}

func listMove(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	session := cmd.Args().Get(0)
	if len(session) == 0 {
		return errors.New("no session name has been specified")
	}
	from, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("malformed image position '%s': %w", cmd.Args().Get(1), err)
	}
	to, err := strconv.Atoi(cmd.Args().Get(2))
	if err != nil {
		return fmt.Errorf("malformed image position '%s': %w", cmd.Args().Get(2), err)
	}

	store, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := loadSession(ctx, store, session)
	if err != nil {
		return err
	}
	if err := list.Move(from-1, to-1); err != nil {
		return err
	}

	if err := store.Save(session, list.Items()); err != nil {
		return err
	}
	log.Info("Image moved", zap.String("session", session), zap.Int("from", from), zap.Int("to", to))
	return nil
}

func listClear(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	session := cmd.Args().Get(0)
	if len(session) == 0 {
		return errors.New("no session name has been specified")
	}

	store, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(session); err != nil {
		return err
	}
	log.Info("Session deleted", zap.String("session", session))
	return nil
}
