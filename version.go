package socketkit

const (
	sdkName = "socketkit-go"

	// Version is the release version of the SDK. It is injected into
	// app_open events as library_version and reported in the user-agent
	// header of every request.
	Version = "0.5.2"
)

func userAgent() string {
	return sdkName + "-" + Version
}
