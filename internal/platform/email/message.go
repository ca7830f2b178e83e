package email

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
)

const attachmentBoundary = "payslip-mime-boundary"

// buildMessage renders the RFC 5322 wire form of msg. Messages without
// attachments stay a single text/plain part; attachments switch the
// message to multipart/mixed with base64 file parts.
func buildMessage(msg Message) []byte {
	var b strings.Builder
	writeHeader(&b, "From", msg.From)
	writeHeader(&b, "To", msg.To)
	writeHeader(&b, "Subject", mime.QEncoding.Encode("UTF-8", msg.Subject))
	writeHeader(&b, "MIME-Version", "1.0")

	if len(msg.Attachments) == 0 {
		writeHeader(&b, "Content-Type", `text/plain; charset="UTF-8"`)
		b.WriteString("\r\n")
		b.WriteString(msg.Body)
		return []byte(b.String())
	}

	writeHeader(&b, "Content-Type", fmt.Sprintf(`multipart/mixed; boundary="%s"`, attachmentBoundary))
	b.WriteString("\r\n")

	b.WriteString("--" + attachmentBoundary + "\r\n")
	writeHeader(&b, "Content-Type", `text/plain; charset="UTF-8"`)
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		b.WriteString("--" + attachmentBoundary + "\r\n")
		writeHeader(&b, "Content-Type", fmt.Sprintf(`%s; name="%s"`, contentType, att.Filename))
		writeHeader(&b, "Content-Transfer-Encoding", "base64")
		writeHeader(&b, "Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, att.Filename))
		b.WriteString("\r\n")
		writeBase64(&b, att.Content)
	}
	b.WriteString("--" + attachmentBoundary + "--\r\n")
	return []byte(b.String())
}

func writeHeader(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}

// writeBase64 wraps the encoded content at 76 columns per RFC 2045.
func writeBase64(b *strings.Builder, content []byte) {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	if len(encoded) > 0 {
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}
}
