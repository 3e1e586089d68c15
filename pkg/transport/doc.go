// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package transport expõe o playground via HTTP.
//
// Rotas:
//
//	POST /login          -> {token, expires_in}
//	GET  /protected      -> 200 {message} | 401 {error}
//	POST /register       -> {id, username, email, createdAt}
//	GET  /user/{id}      -> {id, username, email, roles}
//	GET  /users/{id}     -> User | 404 {"error":"User not found"}
//	GET  /book/{id}      -> {id, title, authors, published}
//	GET  /items?page=n   -> {items, nextPage}
//	GET  /unstable       -> 500 e 200 alternados
//	GET  /event          -> {start, end, name}
//	GET  /order/{id}     -> Order | 200 {"error":"Order not found"}
//	GET  /sorted-users   -> {users} em ordem decrescente de id
//	GET  /health         -> {status}
//
// O mesmo roteador atende o runtime local (StartHTTPServer) e o runtime Lambda
// (LambdaHandler), então as respostas são idênticas nos dois.
package transport
