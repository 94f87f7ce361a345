package main

type Config struct {
	Service struct {
		Addr string `json:"addr"`
		Name string `json:"name"`
	} `json:"service"`
	Metrics struct {
		Addr string `json:"addr"`
	} `json:"metrics"`
}

var GlobalConfig Config
