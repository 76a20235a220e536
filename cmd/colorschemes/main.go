package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/colorschemes/cscli"
)

func main() {
	xmain.Main(cscli.Run)
}
