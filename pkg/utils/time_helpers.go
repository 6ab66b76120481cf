package utils

import (
	"time"
)

// Format des datetime saisis dans le formulaire : heure locale sans fuseau.
const LocalNaiveLayout = "2006-01-02T15:04"

// LocalNaiveToISO résout une saisie locale naïve contre le fuseau local et la
// convertit en ISO-8601 absolu pour le backend. Une saisie vide reste vide.
func LocalNaiveToISO(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(LocalNaiveLayout, value, time.Local)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// ISOToLocalNaive ramène un ISO-8601 absolu au format de saisie local.
// L'interface ne manipule les fuseaux qu'à ses bords.
func ISOToLocalNaive(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", err
	}
	return t.In(time.Local).Format(LocalNaiveLayout), nil
}

// NowLocalNaive retourne l'instant courant au format de saisie local.
// Utilisé pour horodater la fin d'une finition marquée "terminé".
func NowLocalNaive() string {
	return time.Now().Format(LocalNaiveLayout)
}
