package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/prometheus/common/expfmt"
)

var (
	errUsage        = errors.New("usage: <command> <user id>")
	errNoAccount    = errors.New("no such account")
	errNotFinalized = errors.New("account has no password hash yet")
)

func parseUserID(args []string) (int32, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	return parseID(args[0])
}

func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad user id %q: %w", s, err)
	}
	return int32(id), nil
}

func accountStatus(acc models.Account) string {
	if acc.Finalized() {
		return "finalized"
	}
	return "pending"
}

func (a *App) List(ctx context.Context) error {
	list := a.accounts.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "no accounts")
		return nil
	}
	for _, acc := range list {
		fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", acc.UserID, acc.UserName, acc.Email, accountStatus(acc))
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseUserID(args)
	if err != nil {
		return err
	}
	acc, ok := a.accounts.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", errNoAccount, id)
	}

	fmt.Fprintf(a.out, "User ID:  %d\n", acc.UserID)
	fmt.Fprintf(a.out, "Name:     %s\n", acc.UserName)
	fmt.Fprintf(a.out, "Email:    %s\n", acc.Email)
	fmt.Fprintf(a.out, "Status:   %s\n", accountStatus(acc))
	if acc.Finalized() {
		fmt.Fprintf(a.out, "Salt:     %s\n", hex.EncodeToString(acc.Salt))
		fmt.Fprintf(a.out, "Hash:     %s\n", hex.EncodeToString(acc.HashedPassword))
	}
	return nil
}

// Register prompts for a user and submits it for hashing. It does not wait
// for the remote; the account shows up as finalized once the hash arrives.
func (a *App) Register(ctx context.Context) error {
	rawID, err := GetSimpleText(a.reader, "User ID", a.out)
	if err != nil {
		return err
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "User name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	sub, err := a.hashing.SubmitHash(ctx, models.User{
		UserID:   id,
		UserName: name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Submitted hash request %s for user %d\n", sub.ID, sub.UserID)
	return nil
}

// Validate prompts for a password and checks it against the stored hash of
// the account. A failed check is reported as unknown, never as invalid.
func (a *App) Validate(ctx context.Context, args []string) error {
	id, err := parseUserID(args)
	if err != nil {
		return err
	}
	acc, ok := a.accounts.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", errNoAccount, id)
	}
	if !acc.Finalized() {
		return fmt.Errorf("%w: %d", errNotFinalized, id)
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	valid, err := a.validation.Validate(ctx, password, acc.HashedPassword, acc.Salt)
	switch {
	case err != nil:
		// every failure is an ErrValidityUnknown
		fmt.Fprintf(a.out, "password validity unknown: %v\n", err)
		return nil
	case valid:
		fmt.Fprintln(a.out, "password valid")
	default:
		fmt.Fprintln(a.out, "password invalid")
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseUserID(args)
	if err != nil {
		return err
	}
	if _, ok := a.accounts.Get(id); !ok {
		return fmt.Errorf("%w: %d", errNoAccount, id)
	}
	a.accounts.Remove(id)
	fmt.Fprintf(a.out, "Deleted account %d\n", id)
	return nil
}

// Stats prints the collectors in the prometheus text format.
func (a *App) Stats(ctx context.Context) error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return err
		}
	}
	return nil
}
