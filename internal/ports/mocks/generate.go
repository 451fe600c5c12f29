//go:generate mockgen -source=../response_cache.go   -destination=./mock_response_cache.go   -package=mocks
//go:generate mockgen -source=../enquiry.go          -destination=./mock_enquiry.go          -package=mocks
//go:generate mockgen -source=../country.go          -destination=./mock_country.go          -package=mocks
//go:generate mockgen -source=../runtime.go          -destination=./mock_message_consumer.go -package=mocks

package mocks
