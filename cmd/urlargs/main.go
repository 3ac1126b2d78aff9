// Command urlargs resolves URL query arguments against a schema file.
//
//	urlargs resolve  -s args.yaml -q 'count=5&tags=a&tags=b'
//	urlargs describe -s args.yaml -q 'https://example.com/list?count=x'
//	urlargs transforms
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
