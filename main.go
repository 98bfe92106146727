package main

import seekr "github.com/seekr/seekr/cmd/seekr"

func main() { seekr.Execute() }
