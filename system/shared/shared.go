package shared

const (
	// AppName is used for logs and the version checker
	AppName = "IdeapadManager"
	// GitHubRepo is where releases are published
	GitHubRepo = "zllovesuki/IdeapadManager"
	// GRPCAddress is where the daemon listens for gRPC
	GRPCAddress = "127.0.0.1:9963"
	// WebAddress is where the daemon listens for gRPC-Web
	WebAddress = "127.0.0.1:9964"
)
