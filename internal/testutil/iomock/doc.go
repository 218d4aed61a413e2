// Package iomock provides gomock mocks of the io interfaces.
package iomock

//go:generate go tool mockgen -destination=writer.go -package=iomock io Writer
