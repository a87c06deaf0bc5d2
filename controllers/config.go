package controllers

import (
	"agendai/agent"
	"agendai/config"
	"agendai/tools"
)

var cfg config.Configuration

// completer é trocável nos testes; em produção aponta para o Groq.
var completer agent.Completer

// SetConfigurations injeta a configuração carregada no bootstrap.
func SetConfigurations(configuration config.Configuration) {
	cfg = configuration
	completer = tools.GroqClient{
		APIKey: configuration.Groq.ApiKey,
		Model:  configuration.Groq.Model,
	}
}

func mailer() tools.Mailer {
	return tools.Mailer{
		Host: cfg.Smtp.Host,
		Port: cfg.Smtp.Port,
		User: cfg.Smtp.User,
		Pass: cfg.Smtp.Pass,
		From: cfg.Smtp.From,
	}
}
