package dto

import "time"

// StatusResponse estado operacional do serviço, devolvido por GET /status.
type StatusResponse struct {
	UpdatedAt    time.Time          `json:"updated_at"`
	Dependencies StatusDependencies `json:"dependencies"`
}

// StatusDependencies dependências externas observadas no momento da consulta.
type StatusDependencies struct {
	Database DatabaseStatus `json:"database"`
}

// DatabaseStatus estado do banco: versão e conexões do pool.
type DatabaseStatus struct {
	Version         string `json:"version"`
	MaxConnections  int    `json:"max_connections"`
	OpenConnections int    `json:"opened_connections"`
}
