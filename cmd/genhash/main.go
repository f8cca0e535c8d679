// Command genhash prints the bcrypt hash of a password, for building seed
// files with credentials-mode users.
//
//	go run ./cmd/genhash 's3cret-password'
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(2)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
