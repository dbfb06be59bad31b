package main

import (
	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/routes"
)

func Init() {
	configuration.ConfigDB()
}

func main() {
	//Perform application initialization
	Init()
	r := routes.SetupRoutes()
	r.LoadHTMLGlob("templates/*")

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
