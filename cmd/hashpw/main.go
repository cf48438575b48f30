// Command hashpw prints the bcrypt hash of a password for use in the
// auth.users list of config.yaml or in ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpw 's3cret'
//	echo -n 's3cret' | go run ./cmd/hashpw
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"blog-backend/cmd/api/auth"
)

func main() {
	password, err := readPassword(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(2)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return "", fmt.Errorf("empty password")
	}
	return line, nil
}
