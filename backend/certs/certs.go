package certs

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"math/big"
	"net"
	"os"
	"path"
	"time"
)

const CertsPath = "certs"

const Organization = "sungod"

func GetCertsPath(folder, name string) (string, string, bool) {
	certPath := path.Join(folder, fmt.Sprintf("%s.crt", name))
	certKeyPath := path.Join(folder, fmt.Sprintf("%s-key.pem", name))
	_, certErr := os.Stat(certPath)
	_, certKeyErr := os.Stat(certKeyPath)
	return certPath, certKeyPath, os.IsNotExist(certErr) || os.IsNotExist(certKeyErr)
}

// GetCert loads name from folder, creating a self-signed certificate for hosts
// first when it does not exist yet. Hosts may be IP addresses or DNS names.
func GetCert(folder, name string, hosts []string) (tls.Certificate, error) {
	certPath, certKeyPath, missing := GetCertsPath(folder, name)
	if missing {
		log.WithFields(log.Fields{
			"name":  name,
			"hosts": hosts,
		}).Info("Creating self-signed certificate")
		now := time.Now()
		cert := &x509.Certificate{
			SerialNumber: big.NewInt(now.UnixNano()),
			Subject: pkix.Name{
				Organization: []string{Organization},
				CommonName:   name,
			},
			NotBefore:             now,
			NotAfter:              now.AddDate(1, 0, 0),
			ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
			KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
			BasicConstraintsValid: true,
			IsCA:                  true,
		}
		for _, host := range hosts {
			if ip := net.ParseIP(host); ip != nil {
				cert.IPAddresses = append(cert.IPAddresses, ip)
			} else {
				cert.DNSNames = append(cert.DNSNames, host)
			}
		}

		privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			return tls.Certificate{}, err
		}

		certBytes, err := x509.CreateCertificate(rand.Reader, cert, cert, &privKey.PublicKey, privKey)
		if err != nil {
			return tls.Certificate{}, err
		}

		if err := WriteCert(certBytes, certPath, privKey, certKeyPath); err != nil {
			return tls.Certificate{}, err
		}
	}
	return tls.LoadX509KeyPair(certPath, certKeyPath)
}

func WriteCert(certBytes []byte, certPath string, privKey *ecdsa.PrivateKey, certKeyPath string) error {
	certPEM := new(bytes.Buffer)
	if err := pem.Encode(certPEM, &pem.Block{
		Type:  "CERTIFICATE",
		Bytes: certBytes,
	}); err != nil {
		return err
	}

	if err := ioutil.WriteFile(certPath, certPEM.Bytes(), 0600); err != nil {
		return err
	}

	keyBytes, err := x509.MarshalECPrivateKey(privKey)
	if err != nil {
		return err
	}
	privKeyPEM := new(bytes.Buffer)
	if err := pem.Encode(privKeyPEM, &pem.Block{
		Type:  "EC PRIVATE KEY",
		Bytes: keyBytes,
	}); err != nil {
		return err
	}

	return ioutil.WriteFile(certKeyPath, privKeyPEM.Bytes(), 0600)
}
