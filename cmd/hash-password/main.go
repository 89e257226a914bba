package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"legaldoc-backend/service"

	"golang.org/x/crypto/bcrypt"
)

// Prints the environment lines that configure the admin dashboard login.
func main() {
	name := flag.String("name", "", "Admin name")
	email := flag.String("email", "", "Admin email")
	flag.Parse()

	if *name == "" {
		log.Fatal("-name is required")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		log.Fatal("password must not be empty")
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		log.Fatalf("Hash verification failed: %v", err)
	}

	fmt.Printf("LEGALDOC_ADMIN_NAME=%s\n", *name)
	fmt.Printf("LEGALDOC_ADMIN_EMAIL=%s\n", *email)
	fmt.Printf("LEGALDOC_ADMIN_PASSWORD_HASH='%s'\n", hash)
}
