package configs

import (
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var midtransClient snap.Client

func InitMidtransClient() {
	env := midtrans.Sandbox
	if LoadENV.APP_ENV == "production" {
		env = midtrans.Production
	}
	midtransClient.New(LoadENV.MIDTRANS_SERVER_KEY, env)
	midtrans.ClientKey = LoadENV.MIDTRANS_CLIENT_KEY
	midtrans.ServerKey = LoadENV.MIDTRANS_SERVER_KEY
	midtrans.Environment = env
	log.Println("Midtrans Snap client initialized")
}

func GetMidtransSnapClient() snap.Client {
	return midtransClient
}
