// Package sys opens text files on the local filesystem.
//
// It binds the file operations of lesiw.io/textio to the native OS
// filesystem, so callers need not pass a filesystem around:
//
//	text, err := sys.ReadFile(ctx, "notes.txt")
//
// Names are interpreted as the operating system does, relative to the
// working directory unless absolute.
package sys

import (
	"context"

	"lesiw.io/fs"
	"lesiw.io/fs/osfs"
	"lesiw.io/textio"
)

// FS returns the local filesystem.
func FS() fs.FS { return osfs.New() }

// Open opens the named local file. See [textio.Open].
func Open(
	ctx context.Context, name string, mode textio.Mode, opts ...textio.Option,
) (*textio.Handle, error) {
	return textio.Open(ctx, FS(), name, mode, opts...)
}

// ReadFile reads the named local file as text.
func ReadFile(
	ctx context.Context, name string, opts ...textio.Option,
) (string, error) {
	return textio.ReadFile(ctx, FS(), name, opts...)
}

// WriteFile writes text to the named local file, replacing any content.
func WriteFile(
	ctx context.Context, name, text string, opts ...textio.Option,
) error {
	return textio.WriteFile(ctx, FS(), name, text, opts...)
}

// AppendFile appends text to the named local file.
func AppendFile(
	ctx context.Context, name, text string, opts ...textio.Option,
) error {
	return textio.AppendFile(ctx, FS(), name, text, opts...)
}
