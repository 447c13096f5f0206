package proto

//go:generate protoc --go_out=../gen --go_opt=module=github.com/opsfin/invoice-engine/gen --go-grpc_out=../gen --go-grpc_opt=module=github.com/opsfin/invoice-engine/gen invoices/v1/invoices.proto
