package multipart

import (
	"errors"
	"fmt"
	"io"
	"mime"
	stdmultipart "mime/multipart"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/xy-planning-network/forms"
)

const (
	// DefaultTextLimit caps the total bytes of all text parts in one request at 1MB.
	DefaultTextLimit int64 = 1 << 20

	// DefaultFileLimit caps the total bytes of all file parts in one request at 512MB.
	DefaultFileLimit int64 = 512 << 20
)

// A Config adjusts the budgets Load enforces over one request body.
// Zero values fall back to DefaultTextLimit and DefaultFileLimit.
type Config struct {
	// TextLimit is the maximum total size in bytes of all text parts.
	TextLimit int64

	// FileLimit is the maximum total size in bytes of all file parts.
	FileLimit int64
}

func (c Config) textLimit() int64 {
	if c.TextLimit <= 0 {
		return DefaultTextLimit
	}

	return c.TextLimit
}

func (c Config) fileLimit() int64 {
	if c.FileLimit <= 0 {
		return DefaultFileLimit
	}

	return c.FileLimit
}

// Load consumes the multipart body of r part by part, buffering text parts
// in memory and streaming all other parts to temporary files.
//
// RFC 7578 declares text/plain the default Content-Type of a part,
// so parts without one buffer as text. Only UTF-8 text is supported.
//
// Load fails with an error wrapping forms.ErrTooLarge when a budget in cfg runs out,
// with forms.ErrBadFormat on malformed framing, and with forms.ErrUnexpected when
// temporary file I/O fails. On any failure no temporary file from r remains on disk.
//
// The caller owns the returned *Form and must call Close when done with it.
func Load(r *http.Request, cfg Config) (*Form, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable multipart body: %s", forms.ErrBadFormat, err)
	}

	form := new(Form)
	textBudget := cfg.textLimit()
	fileBudget := cfg.fileLimit()

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return form, nil
		}

		if err != nil {
			form.Close()
			return nil, fmt.Errorf("%w: failed reading next part: %s", forms.ErrBadFormat, err)
		}

		name := part.FormName()
		if name == "" {
			form.Close()
			return nil, fmt.Errorf("%w: part missing form-data name", forms.ErrBadFormat)
		}

		if isText(part.Header.Get("Content-Type")) {
			text, used, err := loadText(part, name, textBudget)
			if err != nil {
				form.Close()
				return nil, err
			}

			textBudget -= used
			form.texts = append(form.texts, text)
			continue
		}

		file, used, err := loadFile(part, name, fileBudget)
		if err != nil {
			form.Close()
			return nil, err
		}

		fileBudget -= used
		form.files = append(form.files, file)
	}
}

// isText reports whether the part's Content-Type buffers in memory rather than on disk.
func isText(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "text/plain"
}

// loadText buffers the part in memory, spending at most budget bytes.
func loadText(part io.Reader, name string, budget int64) (Text, int64, error) {
	b, err := io.ReadAll(io.LimitReader(part, budget+1))
	if err != nil {
		return Text{}, 0, fmt.Errorf("%w: failed reading text part %q: %s", forms.ErrBadFormat, name, err)
	}

	if int64(len(b)) > budget {
		return Text{}, 0, fmt.Errorf("%w: text parts exceed limit at %q", forms.ErrTooLarge, name)
	}

	if !utf8.Valid(b) {
		return Text{}, 0, fmt.Errorf("%w: text part %q is not valid UTF-8", forms.ErrBadFormat, name)
	}

	return Text{Name: name, Value: string(b)}, int64(len(b)), nil
}

// loadFile streams the part to a new temporary file, spending at most budget bytes.
// The temporary file is removed before returning an error.
func loadFile(part *stdmultipart.Part, name string, budget int64) (File, int64, error) {
	tmp, err := os.CreateTemp("", "forms-multipart-")
	if err != nil {
		return File{}, 0, fmt.Errorf("%w: failed creating temp file for %q: %s", forms.ErrUnexpected, name, err)
	}

	written, err := io.Copy(tmp, io.LimitReader(part, budget+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		os.Remove(tmp.Name())
		return File{}, 0, fmt.Errorf("%w: failed writing temp file for %q: %s", forms.ErrUnexpected, name, err)
	}

	if written > budget {
		os.Remove(tmp.Name())
		return File{}, 0, fmt.Errorf("%w: file parts exceed limit at %q", forms.ErrTooLarge, name)
	}

	mediaType, _, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
	if mediaType == "" {
		mediaType = strings.TrimSpace(part.Header.Get("Content-Type"))
	}

	return File{
		Name:        name,
		Filename:    part.FileName(),
		ContentType: mediaType,
		Size:        written,
		Path:        tmp.Name(),
	}, written, nil
}
