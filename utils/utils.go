package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
)

func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {

	if logMessagesBuilder.Len() == logMessagesBuilder.Cap() {

		logMessagesBuilder.Grow(len(strToAdd))
	}

	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}

// GenerateOTP returns a random numeric code of the given length.
func GenerateOTP(length int) string {
	buf := make([]byte, length)
	rand.Read(buf)

	var otp strings.Builder
	for _, b := range buf {
		otp.WriteString(fmt.Sprintf("%d", int(b)%10))
	}
	return otp.String()
}
