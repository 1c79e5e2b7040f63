package whois

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/devl00p/async43/src/model"
	"github.com/devl00p/async43/src/normalize"
	"github.com/devl00p/async43/src/validate"
	"github.com/devl00p/async43/src/werrors"
)

// LookupCommand is the native command-mode entry path from §6: it
// shells out to a system whois executable instead of the built-in
// transport, reads stdout as the reply, and runs the same
// structure/normalize/validate pipeline over it. Grounded on
// async43/__init__.py's subprocess invocation and the teacher's
// exec.Command usage in src/service.
func LookupCommand(ctx context.Context, execPath, domain string, extraArgs ...string) (*model.Record, error) {
	args := append([]string{domain}, extraArgs...)
	cmd := exec.CommandContext(ctx, execPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, werrors.CommandFailed(
			execPath+" failed: "+strings.TrimSpace(stderr.String()), err)
	}

	rec := normalize.Normalize(domain, stdout.String())
	validate.CoerceDates(rec)
	if err := validate.Validate(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
