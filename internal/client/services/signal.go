package services

import (
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// SignalKind tags a Signal.
type SignalKind int

const (
	// SignalOk carries a hash response. Zero or one per request is expected.
	SignalOk SignalKind = iota + 1
	// SignalErr terminates a request with an error.
	SignalErr
	// SignalDone terminates a request successfully.
	SignalDone
)

func (k SignalKind) String() string {
	switch k {
	case SignalOk:
		return "ok"
	case SignalErr:
		return "err"
	case SignalDone:
		return "done"
	}
	return fmt.Sprintf("SignalKind(%d)", int(k))
}

// Signal is one event of a hash request: Ok(Credential) | Err(Err) | Done.
// Every request produces its Ok signals first and then exactly one of
// Err or Done.
type Signal struct {
	Kind       SignalKind
	Submission *Submission
	Credential models.Credential
	Err        error
}

func okSignal(sub *Submission, c models.Credential) Signal {
	return Signal{Kind: SignalOk, Submission: sub, Credential: c}
}

func errSignal(sub *Submission, err error) Signal {
	return Signal{Kind: SignalErr, Submission: sub, Err: err}
}

func doneSignal(sub *Submission) Signal {
	return Signal{Kind: SignalDone, Submission: sub}
}
