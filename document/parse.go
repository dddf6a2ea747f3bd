package document

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/erraggy/oasexplorer/oaserrors"
	"go.yaml.in/yaml/v4"
)

// loader reads and decodes a single document.
type loader struct {
	logger      Logger
	maxFileSize int64
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func (l *loader) parseFile(path string) (*Document, error) {
	if path == StdinFilePath {
		data, err := l.readAll(os.Stdin, "<stdin>")
		if err != nil {
			return nil, err
		}
		return l.parseBytes(data, "<stdin>")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to open document", Cause: err}
	}
	defer func() { _ = f.Close() }()

	data, err := l.readAll(f, path)
	if err != nil {
		return nil, err
	}

	return l.parseBytes(data, path)
}

func (l *loader) parseReader(r io.Reader) (*Document, error) {
	data, err := l.readAll(r, "")
	if err != nil {
		return nil, err
	}
	return l.parseBytes(data, "")
}

// readAll reads at most maxFileSize bytes, failing when the source is larger.
func (l *loader) readAll(r io.Reader, source string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxFileSize+1))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to read document", Cause: err}
	}
	if int64(len(data)) > l.maxFileSize {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("document exceeds maximum size of %s", FormatBytes(l.maxFileSize)),
		}
	}
	return data, nil
}

func (l *loader) parseBytes(data []byte, source string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Line:    errorLine(err),
			Message: "invalid YAML/JSON",
			Cause:   err,
		}
	}

	obj, ok := DecodeNode(&root).(*Object)
	if !ok {
		return nil, &oaserrors.ParseError{Path: source, Message: "document root must be a mapping"}
	}

	doc := &Document{
		SourcePath:   source,
		SourceFormat: detectFormat(source, data),
		SourceSize:   int64(len(data)),
		Root:         obj,
	}
	l.logger.Debug("loaded document",
		"source", source,
		"format", string(doc.SourceFormat),
		"size", FormatBytes(doc.SourceSize),
		"paths", Len(doc.Paths()),
		"schemas", Len(doc.Schemas()),
	)
	return doc, nil
}

// errorLine extracts the line number from a YAML decoding error, or 0.
func errorLine(err error) int {
	m := yamlLinePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
