// Package version reports the build version of a data provider service.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/dataprovider/version.Version=1.4.0"
//
// Missing values fall back to the VCS settings recorded by the Go toolchain.
package version
