package contact

import (
	"leadsync/internal/domain/contact"
)

type listInput struct {
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Status   string            `json:"status"`
	Error    string            `json:"error,omitempty"`
	Contacts []contact.Contact `json:"contacts,omitempty"`
	Total    int               `json:"total"`
}

type createInput struct {
	Body contact.Payload
}

type createOutput struct {
	Body MutationResponse
}

type MutationResponse struct {
	ID     int    `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"ID контакта"`
}

type findOutput struct {
	Body FindResponse
}

type FindResponse struct {
	Status  string           `json:"status"`
	Error   string           `json:"error,omitempty"`
	Contact *contact.Contact `json:"contact,omitempty"`
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID контакта"`
	Body contact.Payload
}

type updateOutput struct {
	Body FindResponse
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"ID контакта"`
}

type deleteOutput struct {
	Body MutationResponse
}

type searchInput struct {
	Company  string `query:"company" doc:"Подстрока названия компании"`
	Interest string `query:"interest" doc:"Точное совпадение интереса"`
	From     string `query:"from" format:"date-time" doc:"Нижняя граница updated_at"`
	To       string `query:"to" format:"date-time" doc:"Верхняя граница updated_at"`
	Limit    int    `query:"limit" doc:"Максимум записей, по умолчанию 100"`
	Offset   int    `query:"offset"`
}

type searchOutput struct {
	Body ListResponse
}

type modifiedSinceInput struct {
	Since string `query:"since" required:"true" format:"date-time" doc:"Отдать записи, измененные после этого момента"`
}

type modifiedSinceOutput struct {
	Body ListResponse
}
