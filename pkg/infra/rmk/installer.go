package rmk

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/mod/semver"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/interfaces"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

const defaultInstallerURL = "https://edenlabllc-rmk.s3.eu-north-1.amazonaws.com/rmk/s3-installer"

// minVersion is the oldest RMK release the action knows how to drive.
// Compared against the -rc floor so v0.45.0 itself is accepted.
const minVersion = "v0.45.0-rc"

var commandContext = exec.CommandContext

// ValidateVersion rejects explicit RMK versions older than the supported
// floor. "latest" is always accepted.
func ValidateVersion(version string) error {
	if version == "" || version == "latest" {
		return nil
	}

	if !semver.IsValid(version) || semver.Compare(minVersion, version) > 0 {
		return goerr.New("requested RMK version is not supported, the version must be at least v0.45.0",
			goerr.T(types.TagInvalidConfig),
			goerr.V("rmk_version", version),
		)
	}

	return nil
}

// Option configures the installer.
type Option func(*installer)

// WithInstallerURL overrides the installer script location.
func WithInstallerURL(url string) Option {
	return func(i *installer) {
		if url != "" {
			i.installerURL = url
		}
	}
}

// WithHTTPClient overrides the HTTP client used to fetch the installer.
func WithHTTPClient(c *http.Client) Option {
	return func(i *installer) {
		if c != nil {
			i.httpClient = c
		}
	}
}

// WithToken passes the GitHub token to RMK subprocesses via GITHUB_TOKEN and
// RMK_GITHUB_TOKEN.
func WithToken(token string) Option {
	return func(i *installer) {
		i.token = token
	}
}

type installer struct {
	installerURL string
	httpClient   *http.Client
	token        string
}

// NewInstaller creates an RMK installer with defaults.
func NewInstaller(opts ...Option) interfaces.RMKInstaller {
	ins := &installer{
		installerURL: defaultInstallerURL,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// Install downloads the installer script, runs it for the requested version,
// reports the installed version and initializes the RMK configuration.
func (i *installer) Install(ctx context.Context, version string) error {
	logger := ctxlog.From(ctx)
	logger.Info("Installing RMK", "version", version)

	script, err := i.fetchInstaller(ctx)
	if err != nil {
		return err
	}

	cmd := commandContext(ctx, "bash", "-s", "--", version)
	cmd.Stdin = strings.NewReader(script)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = i.subprocessEnv()
	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "failed to run RMK installer", goerr.V("version", version))
	}

	installed, err := i.installedVersion(ctx)
	if err != nil {
		return err
	}
	logger.Info("RMK installed", "version", installed)

	initCmd := commandContext(ctx, "rmk", "config", "init", "--progress-bar=false")
	initCmd.Stdout = os.Stdout
	initCmd.Stderr = os.Stderr
	initCmd.Env = i.subprocessEnv()
	if err := initCmd.Run(); err != nil {
		return goerr.Wrap(err, "failed to initialize RMK config")
	}

	return nil
}

func (i *installer) fetchInstaller(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.installerURL, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create installer request", goerr.V("url", i.installerURL))
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download RMK installer", goerr.V("url", i.installerURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("unexpected status downloading RMK installer",
			goerr.V("url", i.installerURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read RMK installer script")
	}

	return string(body), nil
}

// installedVersion reads `rmk --version`, which prints a line whose last
// whitespace-separated field is the version.
func (i *installer) installedVersion(ctx context.Context) (string, error) {
	cmd := commandContext(ctx, "rmk", "--version")
	cmd.Env = i.subprocessEnv()

	out, err := cmd.Output()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get RMK version")
	}

	line := strings.TrimSpace(string(out))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return line, nil
	}
	return fields[len(fields)-1], nil
}

func (i *installer) subprocessEnv() []string {
	env := os.Environ()
	if i.token != "" {
		env = append(env, "GITHUB_TOKEN="+i.token, "RMK_GITHUB_TOKEN="+i.token)
	}
	return env
}
