// Command stun-decode decodes a base64-encoded STUN message and prints
// its header and attributes. Useful for inspecting captured packets.
//
// If -password is set, MESSAGE-INTEGRITY is verified with it, using
// long-term credentials when the message carries USERNAME and REALM.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/webrtcutil/stun"
)

var password = flag.String("password", "", "verify MESSAGE-INTEGRITY with this password")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", "stun-decode")
		fmt.Fprintln(os.Stderr, "stun-decode AAEAHCESpEJML0JTQWsyVXkwcmGALwAWaHR0cDovL2xvY2FsaG9zdDozMDAwLwAA")
		fmt.Fprintln(os.Stderr, "First argument must be a base64.StdEncoding-encoded message")
		flag.PrintDefaults()
	}
	flag.Parse()
	data, err := base64.StdEncoding.DecodeString(flag.Arg(0))
	if err != nil {
		logrus.Fatalln("Unable to decode base64 value:", err)
	}
	var cred stun.Credential
	if *password != "" {
		cred = stun.Password(*password)
	}
	m, err := stun.Decode(data, cred)
	if err != nil {
		logrus.Fatalln("Unable to decode message:", err)
	}
	fmt.Println(m)
	for _, a := range m.Attributes {
		fmt.Printf("  %s: %v\n", a.Type(), a)
	}
	if m.IntegrityCheck != stun.VerifyAbsent {
		fmt.Println("MESSAGE-INTEGRITY:", m.IntegrityCheck)
	}
	if m.FingerprintCheck != stun.VerifyAbsent {
		fmt.Println("FINGERPRINT:", m.FingerprintCheck)
	}
}
