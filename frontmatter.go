package smack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrFrontMatter reports a front matter block that cannot be decoded.
var ErrFrontMatter = errors.New("malformed front matter")

var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
	frontmatter.NewFormat(";;;", ";;;", json.Unmarshal),
}

// splitFrontMatter separates a leading front matter block from the rest of
// src. The block must open on the first line with ---, +++ or ;;; and be
// closed by the same delimiter. A non-empty block must look like metadata on
// its second line. Otherwise src is returned untouched.
func splitFrontMatter(src []byte) (block, rest []byte, ok bool) {
	src = trimBOM(src)
	openLine, openNext := nextLine(src, 0)
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return nil, src, false
	}
	secondLine, secondNext := nextLine(src, openNext)
	if isClosingDelimiter(secondLine, delim) {
		return src[:secondNext], src[secondNext:], true
	}
	if !frontMatterMetadataLikely(secondLine) {
		return nil, src, false
	}
	closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return nil, src, false
	}
	return src[:closeNext], src[closeNext:], true
}

// decodeFrontMatter decodes a block returned by splitFrontMatter.
func decodeFrontMatter(block []byte) (map[string]any, error) {
	meta := map[string]any{}
	if len(bytes.Fields(block)) == 2 {
		return meta, nil
	}
	if _, err := frontmatter.Parse(bytes.NewReader(block), &meta, frontMatterFormats...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, nil
}

func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(line)
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if isClosingDelimiter(line, delim) {
			return next, true
		}
		idx = next
	}
	return 0, false
}

func isClosingDelimiter(line, delim []byte) bool {
	return bytes.Equal(bytes.TrimSpace(line), delim)
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
