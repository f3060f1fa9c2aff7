package main

import (
	"flag"
	"net/http"

	"learnhub/assistant/internal/dictionary"
	"learnhub/assistant/internal/logger"
	"learnhub/assistant/internal/tool"
)

func main() {
	var (
		addr    = flag.String("addr", "127.0.0.1:9500", "Listen address")
		dictAPI = flag.String("dict-api", dictionary.DefaultBaseURL, "Dictionary API base URL")
		logPath = flag.String("log", "", "Log file path (default stdout)")
	)
	flag.Parse()

	if err := logger.Init(*logPath); err != nil {
		panic(err)
	}

	dict := dictionary.NewClient(*dictAPI)
	tool.Register("lookup_word", &tool.LookupWord{Dict: dict})
	tool.Register("add_score", &tool.AddScore{})

	logger.Infof("assistant listening on %s (tools: %v)", *addr, tool.Names())
	if err := http.ListenAndServe(*addr, tool.NewHandler()); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
