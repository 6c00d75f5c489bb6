package util

import (
	"strings"
	"testing"
)

func TestAddUniquePrefixToFileName(t *testing.T) {
	filename := "testfile.txt"
	result := AddUniquePrefixToFileName(filename)

	if !strings.HasSuffix(result, "_testfile.txt") {
		t.Errorf("Expected filename to have unique prefix, got %s", result)
	}

	prefix := strings.Split(result, "_")[0]
	if len(prefix) == 0 {
		t.Errorf("Expected a non-empty unique prefix, got %s", prefix)
	}
}

func TestExportDirectoryPath(t *testing.T) {
	got := ToExportDirectoryPath("abc123", "../../certificates.zip")
	if got != "exports/abc123/certificates.zip" {
		t.Errorf("ToExportDirectoryPath() = %s", got)
	}

	name := prepareFileName("certificates.zip", &FileUploadOptions{DirectoryPath: "exports/abc123", UniquePrefix: true})
	if !strings.HasPrefix(name, "exports/abc123/") || !strings.HasSuffix(name, "_certificates.zip") {
		t.Errorf("prepareFileName() = %s", name)
	}
}
