package secret_test

import (
	"fmt"

	"github.com/yyyoichi/sonic_vault/secret"
)

// ExampleNewText demonstrates framing a text and the delimiter overhead.
func ExampleNewText() {
	s, err := secret.NewText("Hello")
	if err != nil {
		panic(err)
	}

	// 8 bits per character, delimiter included
	fmt.Printf("frame: %d bits (= (%d+%d) chars * 8)\n", s.Len(), 5, len(secret.Delimiter))
	// Output:
	// frame: 80 bits (= (5+5) chars * 8)
}

// ExampleScanner demonstrates recovering a text from its framed bits.
func ExampleScanner() {
	s, err := secret.NewText("Hello")
	if err != nil {
		panic(err)
	}

	sc := secret.NewScanner()
	for i := 0; i < s.Len(); i++ {
		if sc.Feed(s.Bit(i)) {
			break
		}
	}
	fmt.Println(sc.Text())
	// Output:
	// Hello
}
