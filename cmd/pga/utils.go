package main

import (
	"os"
)

func MakeDir(d string) {
	err := os.MkdirAll(d, 0755)
	if err != nil {
		ERROR.Fatalln(err)
	}
}
