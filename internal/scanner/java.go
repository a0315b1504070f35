package scanner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// javaHomes are common JDK install locations probed when java is not on
// PATH.
var javaHomes = []string{
	"/opt/homebrew/opt/openjdk", // macOS Homebrew
	"/usr/lib/jvm/default-java", // Debian/Ubuntu
	"/usr/lib/jvm/java",         // RHEL/CentOS
	"/usr/local/openjdk",        // Docker images
}

// FindJava locates a java executable: PATH first, then common install
// locations, then JDKs previously unpacked under ~/.jdk. It never
// installs anything.
func FindJava() (string, error) {
	if path, err := exec.LookPath("java"); err == nil {
		return path, nil
	}

	for _, home := range javaHomes {
		candidate := filepath.Join(home, "bin", "java")
		if isFile(candidate) {
			return candidate, nil
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		jdkDir := filepath.Join(home, ".jdk")
		entries, err := os.ReadDir(jdkDir)
		if err == nil {
			for _, entry := range entries {
				candidate := filepath.Join(jdkDir, entry.Name(), "bin", "java")
				if isFile(candidate) {
					return candidate, nil
				}
			}
		}
	}

	return "", fmt.Errorf("java not found on PATH or in known install locations; install a JRE (e.g. apt-get install default-jre-headless)")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
