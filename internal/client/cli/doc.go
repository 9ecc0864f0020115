// Package cli provides the interactive operator console for the account
// store.
//
// It wires configuration, logging, metrics, the PasswordService client and
// the hashing and validation services, then runs a REPL until the user exits
// or the process receives SIGINT/SIGTERM/SIGQUIT. On exit outstanding hash
// submissions are drained (bounded by the shutdown timeout) before the
// channel to the remote service is closed.
//
// Commands:
//   - list                 show every account, finalized or pending
//   - show <id>            show one account
//   - register             prompt for a user and submit its password for hashing
//   - validate <id>        prompt for a password and check it against the stored hash
//   - delete <id>          remove an account from the store
//   - stats                print the hash and validate counters
//   - exit | quit
package cli
