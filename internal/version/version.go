package version

// Name is the generator name recorded in build metadata.
const Name = "sedum"

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/sedum/internal/version.Version=v1.0.0".
var Version = "dev"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return Name + " " + Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
