// Package platform detects the host distribution identity used to select
// concrete package names during resolution.
package platform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
)

// osReleasePath is the standard release-description file on Linux hosts.
const osReleasePath = "/etc/os-release"

// Identity is the host distribution identity. Both fields are lower-cased.
// Version may be empty when the platform does not report one.
type Identity struct {
	ID      string
	Version string
}

// Generic is the identity used when no distribution can be detected. Mappings
// registered under the "generic" tier still resolve against it.
func Generic() Identity {
	return Identity{ID: "generic"}
}

// String renders the identity for log and error messages.
func (id Identity) String() string {
	if id.Version == "" {
		return id.ID
	}
	return id.ID + " " + id.Version
}

// ParseOverride parses an externally supplied identity such as "ubuntu 24.04"
// or "rhel". It is used for reproducible and cross builds where probing the
// host would yield the wrong answer.
func ParseOverride(s string) (Identity, error) {
	fields := strings.Fields(strings.ToLower(s))
	switch len(fields) {
	case 1:
		return Identity{ID: fields[0]}, nil
	case 2:
		return Identity{ID: fields[0], Version: fields[1]}, nil
	default:
		return Identity{}, fmt.Errorf("invalid distro override %q: expected \"id\" or \"id version\"", s)
	}
}

// Detect probes the host platform once and returns its identity. Probe order:
// the lsb_release command first, the /etc/os-release file second. When neither
// source yields an identifier the generic identity is returned. The result is
// fixed for the process lifetime; callers must not re-detect per query.
func Detect(ctx context.Context) Identity {
	logger := ctxlog.FromContext(ctx)

	if id, ok := detectFromCommand(ctx); ok {
		logger.Debug("Detected platform via lsb_release.", "id", id.ID, "version", id.Version)
		return id
	}

	if id, ok := detectFromFile(osReleasePath); ok {
		logger.Debug("Detected platform via os-release file.", "id", id.ID, "version", id.Version)
		return id
	}

	logger.Warn("Could not detect host distribution, falling back to generic package mappings.")
	return Generic()
}

// detectFromCommand asks lsb_release for the distributor id and release.
func detectFromCommand(ctx context.Context) (Identity, bool) {
	id, err := runTrimmed(ctx, "lsb_release", "-si")
	if err != nil || id == "" {
		return Identity{}, false
	}
	// The version probe is best-effort; an id without a version is still usable.
	version, err := runTrimmed(ctx, "lsb_release", "-sr")
	if err != nil {
		version = ""
	}
	return Identity{ID: strings.ToLower(id), Version: strings.ToLower(version)}, true
}

func runTrimmed(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// detectFromFile reads a release-description file in os-release format.
func detectFromFile(path string) (Identity, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Identity{}, false
	}
	defer f.Close()
	return parseOSRelease(f)
}

// parseOSRelease extracts the ID and VERSION_ID fields from os-release
// formatted content. Values may be quoted.
func parseOSRelease(r io.Reader) (Identity, bool) {
	var id Identity
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch strings.TrimSpace(key) {
		case "ID":
			id.ID = strings.ToLower(value)
		case "VERSION_ID":
			id.Version = strings.ToLower(value)
		}
	}
	if id.ID == "" {
		return Identity{}, false
	}
	return id, true
}
