package textio

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdfs "io/fs"

	"lesiw.io/fs"
	"lesiw.io/fs/path"
)

// Open opens name on fsys and returns a handle on it.
//
// [ReadMode] opens an existing file. [WriteMode] creates or truncates
// the file, and [AppendMode] appends to it; both create missing parent
// directories. [ReadWriteMode] is not supported by files.
//
// The handle is named after the file, and the file's size is used to
// size the buffer of [Handle.GetContents].
// Options configure both the device and the handle.
func Open(
	ctx context.Context, fsys fs.FS, name string, mode Mode, opts ...Option,
) (*Handle, error) {
	opts = append([]Option{WithName(name), WithMode(mode)}, opts...)

	var dev Device
	switch mode {
	case ReadMode:
		rc, err := fs.Open(ctx, fsys, name)
		if err != nil {
			return nil, err
		}
		dev = NewDevice(rc, nil, append(opts, withSize(func() (int64, error) {
			info, err := fs.Stat(ctx, fsys, name)
			if err != nil {
				return 0, err
			}
			return info.Size(), nil
		}))...)
	case WriteMode, AppendMode:
		if dir := path.Dir(name); dir != "." {
			if err := fs.MkdirAll(ctx, fsys, dir); err != nil {
				return nil, err
			}
		}
		var (
			wc  io.WriteCloser
			err error
		)
		if mode == WriteMode {
			wc, err = fs.Create(ctx, fsys, name)
		} else {
			wc, err = appendFile(ctx, fsys, name)
		}
		if err != nil {
			return nil, err
		}
		dev = NewDevice(nil, wc, opts...)
	default:
		return nil, fmt.Errorf("textio: open %s: unsupported mode %v",
			name, mode)
	}
	tracef("open %s (%v)", name, mode)
	return NewHandle(dev, opts...), nil
}

// appendFile opens name for appending. Filesystems that cannot append
// have the existing content read back and rewritten ahead of new output.
func appendFile(
	ctx context.Context, fsys fs.FS, name string,
) (io.WriteCloser, error) {
	if afs, ok := fsys.(fs.AppendFS); ok {
		return afs.Append(ctx, name)
	}
	var prev []byte
	rc, err := fs.Open(ctx, fsys, name)
	switch {
	case err == nil:
		prev, err = io.ReadAll(rc)
		if err = errors.Join(err, rc.Close()); err != nil {
			return nil, err
		}
	case !errors.Is(err, stdfs.ErrNotExist):
		return nil, err
	}
	wc, err := fs.Create(ctx, fsys, name)
	if err != nil {
		return nil, err
	}
	if _, err := wc.Write(prev); err != nil {
		_ = wc.Close()
		return nil, err
	}
	return wc, nil
}

// ReadFile reads the whole of name on fsys as text.
func ReadFile(
	ctx context.Context, fsys fs.FS, name string, opts ...Option,
) (string, error) {
	h, err := Open(ctx, fsys, name, ReadMode, opts...)
	if err != nil {
		return "", err
	}
	s, err := h.GetContents()
	if err = errors.Join(err, h.Close()); err != nil {
		return "", err
	}
	return s, nil
}

// WriteFile writes text to name on fsys, replacing any content.
func WriteFile(
	ctx context.Context, fsys fs.FS, name, text string, opts ...Option,
) error {
	return writeFile(ctx, fsys, name, text, WriteMode, opts)
}

// AppendFile appends text to name on fsys, creating it if needed.
func AppendFile(
	ctx context.Context, fsys fs.FS, name, text string, opts ...Option,
) error {
	return writeFile(ctx, fsys, name, text, AppendMode, opts)
}

func writeFile(
	ctx context.Context, fsys fs.FS, name, text string, mode Mode,
	opts []Option,
) error {
	h, err := Open(ctx, fsys, name, mode, opts...)
	if err != nil {
		return err
	}
	return errors.Join(h.PutStr(text), h.Close())
}
