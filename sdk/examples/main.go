package main

import (
	"context"
	"fmt"
	"log"

	"github.com/dangerclosesec/cpp2py/sdk/client"
)

func main() {
	c := client.NewClient(client.DefaultConfig())

	resp, err := c.Translate(context.Background(), &client.TranslateRequest{
		Source: `#include <iostream>
using namespace std;
int main() {
	cout << "Hello from C++";
	return 0;
}`,
	})
	if err != nil {
		log.Fatalf("translation failed: %v", err)
	}

	fmt.Println(resp.Python)
	for _, warning := range resp.Warnings {
		fmt.Printf("warning: %s (line %d)\n", warning.Message, warning.Line)
	}
}
