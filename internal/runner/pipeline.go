package runner

import (
	"path"

	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/provision"
)

// Pipeline runs the three provisioning steps in order. The steps are strictly
// sequential with no branching: tooling install, lockfile generation,
// environment creation. Any failure aborts the run; nothing is retried and
// partially created artifacts are left for the conda tools to reconcile on
// the next run.
type Pipeline struct {
	Config config.Config

	// Exec runs one external command. Defaults to the real thing; tests
	// replace it to record command lines and inject failures.
	Exec ExecFunc
}

// NewPipeline returns a Pipeline bound to the real command executor.
func NewPipeline(cfg config.Config) *Pipeline {
	return &Pipeline{Config: cfg, Exec: systemExec}
}

// Provision runs the full pipeline for the given request and resolved
// platform identifier, short-circuiting on the first failing step.
func (p *Pipeline) Provision(req *provision.Request, platform string) error {
	if err := p.InstallTooling(); err != nil {
		return err
	}
	if err := p.GenerateLockfile(req, platform); err != nil {
		return err
	}
	return p.UpdateEnvironment(req.Name, platform)
}

// InstallTooling installs the lock tooling (mamba, conda-lock by default)
// into the base environment from the configured channel.
func (p *Pipeline) InstallTooling() error {
	argv := []string{"conda", "install", "-qy", "-n", "base", "-c", p.Config.Channel}
	argv = append(argv, p.Config.Tooling...)
	return run(p.Exec, "install-tooling", argv)
}

// GenerateLockfile invokes conda-lock for the resolved platform. The extras
// string is always passed, even when empty. The fixed project manifest comes
// first, followed by one -f argument per accumulated spec fragment, in the
// order the fragments appeared on the command line.
func (p *Pipeline) GenerateLockfile(req *provision.Request, platform string) error {
	argv := []string{
		"conda-lock", "lock", "--mamba", "-k", "env",
		"-p", platform,
		"--extras", req.ExtrasString(),
		"-f", p.Config.Manifest,
	}
	for _, frag := range req.SpecFiles {
		argv = append(argv, "-f", path.Join(p.Config.SpecDir, frag+".yml"))
	}
	return run(p.Exec, "lock", argv)
}

// UpdateEnvironment creates or updates the named environment from the
// lockfile conda-lock wrote for the platform.
func (p *Pipeline) UpdateEnvironment(name, platform string) error {
	argv := []string{"mamba", "env", "update", "-q", "-n", name, "-f", p.Config.LockfileName(platform)}
	return run(p.Exec, "env-update", argv)
}
