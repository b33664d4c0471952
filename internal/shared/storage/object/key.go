package object

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"resume-builder/internal/shared/util"
)

const sniffLen = 512

// NewKey builds "<hashed owner>/<random>_<file name>". Owners never appear in clear text.
func NewKey(owner, fileName string) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return path.Join(util.HashOwnerKey(owner), randomID()+"_"+sanitized), nil
}

// ResolveContentType returns declared, or sniffs the head of body when declared is empty.
// The returned reader replays the sniffed bytes.
func ResolveContentType(declared string, body io.Reader) (string, io.Reader, error) {
	if declared != "" {
		return declared, body, nil
	}
	buffered := bufio.NewReaderSize(body, sniffLen)
	head, err := buffered.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", nil, fmt.Errorf("read sniff: %w", err)
	}
	return http.DetectContentType(head), buffered, nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
