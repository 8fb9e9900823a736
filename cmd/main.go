package main

import (
	"github.com/anurudhk499/SafeBite/config"
	"github.com/anurudhk499/SafeBite/routes"
)

func main() {
	config.Init()
	r := routes.SetupRouter()
	r.Run(config.Addr())
}
