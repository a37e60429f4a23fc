// issue-service-token prints a bearer JWT for service to service callers
// (e.g. the nightly sales import job). The token is validated by the
// backend's Authorization middleware; API_SECRET must match.
//
// Usage:
//   API_SECRET=... go run ./cmd/issue-service-token -id 1 -role Admin
package main

import (
	"flag"
	"fmt"
	"os"

	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

func main() {
	id := flag.Int("id", 1, "numeric caller id embedded in the token")
	role := flag.String("role", "Admin", "role claim (Admin or Viewer)")
	flag.Parse()

	token, err := utils.JwtGenerate(*id, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
